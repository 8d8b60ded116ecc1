package main

import (
	"fmt"
	"os"

	"github.com/cellmorph/utils/digest"
)

// DigestCmd hashes files and prints one digest per line.
type DigestCmd struct {
	Algorithm string   `help:"Digest algorithm" default:"sha1" enum:"md5,sha1,sha256"`
	Files     []string `arg:"" help:"Files to hash" type:"existingfile"`
}

func (c *DigestCmd) Run(cli *CLI) error {
	for _, path := range c.Files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		sum, err := digest.Hex(c.Algorithm, f)
		f.Close()
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", sum, path)
	}
	return nil
}
