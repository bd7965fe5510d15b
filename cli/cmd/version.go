package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/rustcfg/pkg"
)

// Version prints the rustcfg version.
type Version struct{}

// Run executes the version command.
func (Version) Run(context.Context) error {
	_, err := fmt.Printf("%s %s\n", pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}
