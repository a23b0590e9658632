//go:build ignore

// Minifies the static CSS/JS for release builds. Run with:
//
//	go run build.go -release
//	go run build.go -clean
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

var m = minify.New()

func init() {
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/javascript", js.Minify)
}

func main() {
	release := flag.Bool("release", false, "minify assets for release")
	clean := flag.Bool("clean", false, "remove minified assets")
	flag.Parse()

	switch {
	case *release && *clean:
		log.Fatal("-release and -clean are mutually exclusive")
	case *release:
		if err := processAssets(); err != nil {
			log.Fatalf("minify failed: %v", err)
		}
		fmt.Println("assets minified")
	case *clean:
		if err := cleanupAssets(); err != nil {
			log.Fatalf("cleanup failed: %v", err)
		}
		fmt.Println("minified assets removed")
	default:
		fmt.Println("nothing to do; use -release or -clean")
	}
}

func processAssets() error {
	return walkAssets(func(path, mediatype string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		minified, err := m.Bytes(mediatype, data)
		if err != nil {
			return err
		}
		return os.WriteFile(minPath(path), minified, 0o644)
	})
}

func cleanupAssets() error {
	return walkAssets(func(path, _ string) error {
		err := os.Remove(minPath(path))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	})
}

func walkAssets(fn func(path, mediatype string) error) error {
	return filepath.Walk("static", func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || strings.Contains(path, ".min.") {
			return err
		}
		switch filepath.Ext(path) {
		case ".css":
			return fn(path, "text/css")
		case ".js":
			return fn(path, "text/javascript")
		}
		return nil
	})
}

func minPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".min" + ext
}
