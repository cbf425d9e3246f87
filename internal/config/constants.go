package config

// Base application details
const AppName = "ted"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "ted.log"

// UI layout
const StatusBarHeight = 1

// Editor defaults
const DefaultTabWidth = 4
const DefaultLineNumbers = true
const DefaultSystemClipboard = true
