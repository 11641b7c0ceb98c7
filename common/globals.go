package common

// VarcVersion is the current varc version as a string.
const VarcVersion string = "0.1.0"

// DeclFileExt is the expected file extension for a declaration file.
const DeclFileExt string = ".toml"
