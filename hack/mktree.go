//go:build ignore
// +build ignore

package main

import (
	"log"
	"os"
	"path/filepath"
)

// lays out a small input tree to play with:
//
//	go run hack/mktree.go /tmp/hubdata
//	hubgen generate /tmp/hubdata --destination /tmp/hub
func main() {
	log.SetFlags(0)
	root := "testdata/hubtree"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	files := []string{
		"input.bw",
		"genes.composite/genes.bb",
		"genes.composite/regulation.bb",
		"marks.super/H3K4me1.multiwig/sample1.bw",
		"marks.super/H3K4me1.multiwig/sample2.bw",
		"marks.super/H3K27ac.multiwig/sample1.bw",
		"RNA.composite/sample1.RNA.fwd.bw",
		"RNA.composite/sample1.RNA.rev.bw",
	}
	for _, f := range files {
		pth := filepath.Join(root, filepath.FromSlash(f))
		os.MkdirAll(filepath.Dir(pth), 0700)
		if err := os.WriteFile(pth, []byte("placeholder\n"), 0600); err != nil {
			log.Fatalln(err)
		}
		log.Println(pth)
	}
}
