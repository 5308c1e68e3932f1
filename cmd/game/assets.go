package main

import "embed"

// Configs, map, script, textures and audio shipped inside the binary
//
//go:embed assets
var embeddedAssets embed.FS
