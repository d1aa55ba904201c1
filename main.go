package main

import (
	"embed"

	"demodash/cmd"
)

//go:embed ui/templates/*.html ui/static/css/* ui/static/js/*
var embeddedFiles embed.FS

func main() {
	cmd.Execute(embeddedFiles)
}
