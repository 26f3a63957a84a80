// Package main provides the entry point for the portfolio website.
// It serves the project list stored in a gorm backed database, an about
// page and a contact form whose submissions are mailed to the site owner
// through an SMTP relay. The web server is built on the Fiber framework.
package main
