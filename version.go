package notes

// Version is overridden at build time with -ldflags "-X github.com/aretw0/notes.Version=...".
var Version = "dev"
