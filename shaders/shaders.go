// Package shaders loads the precompiled SPIR-V binaries used by the sandbox.
package shaders

import (
	"context"
	"io/fs"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// File names of the two shader binaries, relative to the shader directory.
const (
	VertexFile   = "vert.spv"
	FragmentFile = "frag.spv"
)

// Load reads the named files from fsys concurrently. The result holds the
// contents in the order of names.
func Load(ctx context.Context, fsys fs.FS, names ...string) ([][]byte, error) {
	code := make([][]byte, len(names))

	group, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return errors.Wrapf(err, "reading shader %s", name)
			}
			if len(data) == 0 {
				return errors.Newf("shader %s is empty", name)
			}

			code[i] = data
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return code, nil
}
