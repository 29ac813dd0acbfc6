package model

// SettingsID is the fixed id of the site settings singleton. Exactly one
// settings row ever exists; it is created lazily on first read.
const SettingsID = "main"

// DefaultShowProjects is the showProjects value a fresh settings row gets.
const DefaultShowProjects = true
