// Package handler contains the HTML page handlers for the public site
// and the admin panel.
package handler

// Route paths used across handlers.
const (
	RouteRoot     = "/"
	RouteLogin    = "/login"
	RouteAdmin    = "/admin"
	RouteMessages = "/admin/messages"
	RouteProjects = "/admin/projects"
	RouteSettings = "/admin/settings"
)
