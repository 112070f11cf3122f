package types

// Version is overwritten at build time via -ldflags "-X".
var Version = "dev"

// ServiceName is reported by the health endpoint
const ServiceName = "buildhook"
