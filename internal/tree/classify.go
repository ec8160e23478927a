package tree

import (
	"io/fs"
	"strings"
)

// Kind is the icon classification of a node.
type Kind string

const (
	KindDefault    Kind = "default"
	KindDirectory  Kind = "directory"
	KindSymlink    Kind = "symlink"
	KindExecutable Kind = "executable"

	KindArchive    Kind = "archive"
	KindAudio      Kind = "audio"
	KindDocument   Kind = "document"
	KindFont       Kind = "font"
	KindImage      Kind = "image"
	KindMarkdown   Kind = "markdown"
	KindStorage    Kind = "storage"
	KindVideo      Kind = "video"
	KindJSON       Kind = "json"
	KindYAML       Kind = "yaml"
	KindTOML       Kind = "toml"
	KindSettings   Kind = "settings"
	KindLock       Kind = "lock"
	KindLog        Kind = "log"
	KindVCS        Kind = "vcs"
	KindGitLab     Kind = "gitlab"
	KindDocker     Kind = "docker"
	KindHeroku     Kind = "heroku"
	KindTerminal   Kind = "terminal"
	KindHTML       Kind = "html"
	KindCSS        Kind = "css"
	KindGo         Kind = "go"
	KindRust       Kind = "rust"
	KindPython     Kind = "python"
	KindJavaScript Kind = "javascript"
	KindTypeScript Kind = "typescript"
	KindReact      Kind = "react"
	KindC          Kind = "c"
	KindCPP        Kind = "cpp"
	KindJava       Kind = "java"
	KindKotlin     Kind = "kotlin"
	KindCSharp     Kind = "csharp"
	KindRuby       Kind = "ruby"
	KindPHP        Kind = "php"
	KindSwift      Kind = "swift"
	KindLua        Kind = "lua"
	KindHaskell    Kind = "haskell"
	KindElixir     Kind = "elixir"
	KindScala      Kind = "scala"
	KindDart       Kind = "dart"
	KindZig        Kind = "zig"
	KindNix        Kind = "nix"
	KindVue        Kind = "vue"
	KindSvelte     Kind = "svelte"
)

// exact file names, case-sensitive
var exactNames = map[string]Kind{
	"Dockerfile":    KindDocker,
	"Containerfile": KindDocker,
	"Podfile":       KindRuby,
	"Gemfile":       KindRuby,
	"Rakefile":      KindRuby,
	"Procfile":      KindHeroku,
	"Makefile":      KindTerminal,
	"Justfile":      KindTerminal,
}

// extensionless names matched case-insensitively
var bareNames = map[string]Kind{
	"license": KindDocument, "licence": KindDocument, "readme": KindDocument,
	"changelog": KindDocument, "authors": KindDocument,
}

// lowercase suffixes without the leading dot; compound suffixes win over
// plain extensions because the longest candidate is tried first
var suffixKinds = map[string]Kind{
	"gitlab-ci.yml": KindGitLab,
	"gitignore":     KindVCS, "gitattributes": KindVCS, "gitmodules": KindVCS, "gitkeep": KindVCS,
	"dockerignore":      KindDocker,
	"package-lock.json": KindLock, "lock": KindLock,
	"log": KindLog,
	"go":  KindGo, "go.mod": KindGo, "go.sum": KindGo, "go.work": KindGo,
	"rs": KindRust,
	"py": KindPython, "pyi": KindPython, "ipynb": KindPython,
	"js": KindJavaScript, "mjs": KindJavaScript, "cjs": KindJavaScript,
	"ts": KindTypeScript, "mts": KindTypeScript, "cts": KindTypeScript, "d.ts": KindTypeScript,
	"jsx": KindReact, "tsx": KindReact,
	"c": KindC, "h": KindC,
	"cpp": KindCPP, "cc": KindCPP, "cxx": KindCPP, "hpp": KindCPP, "hh": KindCPP, "hxx": KindCPP,
	"java": KindJava, "jar": KindJava,
	"kt": KindKotlin, "kts": KindKotlin,
	"cs": KindCSharp,
	"rb": KindRuby, "gemspec": KindRuby,
	"php":   KindPHP,
	"swift": KindSwift,
	"lua":   KindLua,
	"hs":    KindHaskell,
	"ex":    KindElixir, "exs": KindElixir,
	"scala": KindScala, "sc": KindScala,
	"dart":   KindDart,
	"zig":    KindZig,
	"nix":    KindNix,
	"vue":    KindVue,
	"svelte": KindSvelte,
	"html":   KindHTML, "htm": KindHTML,
	"css": KindCSS, "scss": KindCSS, "sass": KindCSS, "less": KindCSS,
	"md": KindMarkdown, "markdown": KindMarkdown, "mdx": KindMarkdown,
	"json": KindJSON, "jsonc": KindJSON, "json5": KindJSON,
	"yaml": KindYAML, "yml": KindYAML,
	"toml": KindTOML,
	"ini":  KindSettings, "cfg": KindSettings, "conf": KindSettings, "config": KindSettings,
	"env": KindSettings, "editorconfig": KindSettings, "properties": KindSettings,
	"sh": KindTerminal, "bash": KindTerminal, "zsh": KindTerminal, "fish": KindTerminal,
	"ps1": KindTerminal, "bat": KindTerminal, "cmd": KindTerminal,
	"png": KindImage, "jpg": KindImage, "jpeg": KindImage, "gif": KindImage, "bmp": KindImage,
	"svg": KindImage, "webp": KindImage, "ico": KindImage, "tiff": KindImage, "avif": KindImage,
	"mp3": KindAudio, "wav": KindAudio, "flac": KindAudio, "ogg": KindAudio, "m4a": KindAudio,
	"aac": KindAudio, "opus": KindAudio,
	"mp4": KindVideo, "mkv": KindVideo, "mov": KindVideo, "avi": KindVideo, "webm": KindVideo,
	"pdf": KindDocument, "doc": KindDocument, "docx": KindDocument, "odt": KindDocument,
	"rtf": KindDocument, "txt": KindDocument, "tex": KindDocument,
	"zip": KindArchive, "tar": KindArchive, "gz": KindArchive, "tgz": KindArchive, "bz2": KindArchive,
	"xz": KindArchive, "7z": KindArchive, "rar": KindArchive, "zst": KindArchive,
	"ttf": KindFont, "otf": KindFont, "woff": KindFont, "woff2": KindFont,
	"db": KindStorage, "sqlite": KindStorage, "sqlite3": KindStorage, "sql": KindStorage,
}

// Classify picks the icon kind for an entry. First match wins:
// symlink, directory, executable bit, exact name, suffix, default.
func Classify(name string, mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode&0o111 != 0:
		return KindExecutable
	}
	return ClassifyName(name)
}

// ClassifyName classifies by file name alone. Suffixes are only tried after
// a dot, so a file called "go" or "log" stays KindDefault. Dotfiles match
// on everything after the leading dots.
func ClassifyName(name string) Kind {
	if k, ok := exactNames[name]; ok {
		return k
	}
	lower := strings.ToLower(name)
	if k, ok := bareNames[lower]; ok {
		return k
	}
	s := strings.TrimLeft(lower, ".")
	if s == lower {
		i := strings.IndexByte(s, '.')
		if i < 0 {
			return KindDefault
		}
		// compound names such as go.mod are listed whole
		if k, ok := suffixKinds[s]; ok {
			return k
		}
		s = s[i+1:]
	}
	for s != "" {
		if k, ok := suffixKinds[s]; ok {
			return k
		}
		i := strings.IndexByte(s, '.')
		if i < 0 {
			break
		}
		s = s[i+1:]
	}
	return KindDefault
}
