package ui

import (
	"os"

	"texplore/internal/tree"
)

// nfEnabled returns true when Nerd Font icons should be rendered.
// NERDFONT=0 forces the plain fallbacks regardless of config.
func nfEnabled(configured bool) bool {
	return configured && os.Getenv("NERDFONT") != "0"
}

type glyph struct{ nerd, plain string }

var kindGlyphs = map[tree.Kind]glyph{
	tree.KindDirectory:  {"\uf07b", "▸"}, // fa-folder
	tree.KindSymlink:    {"\uf481", "→"}, // oct-file_symlink_file
	tree.KindExecutable: {"\uf489", "*"}, // oct-terminal
	tree.KindArchive:    {"\uf410", "•"}, // oct-file_zip
	tree.KindAudio:      {"\uf1c7", "•"}, // fa-file_audio_o
	tree.KindVideo:      {"\uf1c8", "•"}, // fa-file_video_o
	tree.KindImage:      {"\uf1c5", "•"}, // fa-file_image_o
	tree.KindDocument:   {"\uf15c", "•"}, // fa-file_text
	tree.KindFont:       {"\uf031", "•"}, // fa-font
	tree.KindMarkdown:   {"\ue609", "•"}, // seti-markdown
	tree.KindStorage:    {"\uf1c0", "•"}, // fa-database
	tree.KindJSON:       {"\ue60b", "•"}, // seti-json
	tree.KindYAML:       {"\ue615", "•"},
	tree.KindTOML:       {"\ue615", "•"},
	tree.KindSettings:   {"\ue615", "•"}, // seti-config
	tree.KindLock:       {"\uf023", "•"}, // fa-lock
	tree.KindLog:        {"\uf0f6", "•"}, // fa-file_text_o
	tree.KindVCS:        {"\ue702", "•"}, // dev-git
	tree.KindGitLab:     {"\uf296", "•"}, // fa-gitlab
	tree.KindDocker:     {"\uf308", "•"}, // linux-docker
	tree.KindHeroku:     {"\ue77b", "•"}, // dev-heroku
	tree.KindTerminal:   {"\uf489", "•"},
	tree.KindHTML:       {"\ue736", "•"}, // dev-html5
	tree.KindCSS:        {"\ue749", "•"}, // dev-css3
	tree.KindGo:         {"\ue627", "•"}, // seti-go
	tree.KindRust:       {"\ue7a8", "•"}, // dev-rust
	tree.KindPython:     {"\ue606", "•"}, // seti-python
	tree.KindJavaScript: {"\ue74e", "•"}, // dev-javascript
	tree.KindTypeScript: {"\ue628", "•"}, // seti-typescript
	tree.KindReact:      {"\ue7ba", "•"}, // dev-react
	tree.KindC:          {"\ue61e", "•"}, // custom-c
	tree.KindCPP:        {"\ue61d", "•"}, // custom-cpp
	tree.KindJava:       {"\ue738", "•"}, // dev-java
	tree.KindKotlin:     {"\ue634", "•"}, // seti-kotlin
	tree.KindCSharp:     {"\uf81a", "•"},
	tree.KindRuby:       {"\ue739", "•"}, // dev-ruby
	tree.KindPHP:        {"\ue73d", "•"}, // dev-php
	tree.KindSwift:      {"\ue755", "•"}, // dev-swift
	tree.KindLua:        {"\ue620", "•"}, // seti-lua
	tree.KindHaskell:    {"\ue777", "•"}, // dev-haskell
	tree.KindElixir:     {"\ue62d", "•"}, // seti-elixir
	tree.KindScala:      {"\ue737", "•"}, // dev-scala
	tree.KindDart:       {"\ue798", "•"}, // dev-dart
	tree.KindZig:        {"\ue6a9", "•"},
	tree.KindNix:        {"\uf313", "•"}, // linux-nixos
	tree.KindVue:        {"\ue6a0", "•"},
	tree.KindSvelte:     {"\ue697", "•"},
}

var defaultGlyph = glyph{"\uf15b", "•"} // fa-file

// iconFor returns the glyph for an entry; open directories get their own.
func iconFor(k tree.Kind, expanded, nerd bool) string {
	if k == tree.KindDirectory && expanded {
		if nerd {
			return "\uf07c" // fa-folder_open
		}
		return "▾"
	}
	g, ok := kindGlyphs[k]
	if !ok {
		g = defaultGlyph
	}
	if nerd {
		return g.nerd
	}
	return g.plain
}
