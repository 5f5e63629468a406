package main

// Version is reported by --version. Release builds set it with
// -ldflags "-X main.Version=...".
var Version = "dev"
