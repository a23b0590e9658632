//go:build !release

package main

import "os"

func init() {
	templatesFS = os.DirFS("templates")
	staticFS = os.DirFS("static")
}
