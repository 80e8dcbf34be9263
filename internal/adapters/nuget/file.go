// Package nuget implements directory-backed package feeds and package archives.
package nuget

import (
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

// ArchiveExt is the file extension of package archives.
const ArchiveExt = ".nupkg"

var _ ports.NugetFile = (*File)(nil)

// File is a package archive on disk.
type File struct {
	path     string
	identity domain.PackageIdentity
	layout   domain.LayoutMode
	fs       ports.FileSystem
	codec    ports.ArchiveCodec
}

// OpenFile parses the identity of the archive at path from its filename.
func OpenFile(
	path string,
	layout domain.LayoutMode,
	fsys ports.FileSystem,
	codec ports.ArchiveCodec,
) (*File, error) {
	base := filepath.Base(path)
	id, err := domain.ParseIdentity(strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &File{
		path:     path,
		identity: id,
		layout:   layout,
		fs:       fsys,
		codec:    codec,
	}, nil
}

// Identity returns the name and version parsed from the archive filename.
func (f *File) Identity() domain.PackageIdentity {
	return f.identity
}

// FileName returns the path of the archive.
func (f *File) FileName() string {
	return f.path
}

// String implements fmt.Stringer.
func (f *File) String() string {
	return f.identity.String()
}

// ExplodedDirectory returns root/Name.Version in classic layout and root/Name otherwise.
func (f *File) ExplodedDirectory(root string) string {
	if f.layout == domain.LayoutClassic {
		return filepath.Join(root, f.identity.FileStem())
	}
	return filepath.Join(root, f.identity.Name)
}

// NugetFolder returns the exploded directory of the package inside the solution's packages directory.
func (f *File) NugetFolder(solution *domain.Solution) string {
	return f.ExplodedDirectory(solution.PackagesPath())
}

// ExplodeTo replaces the exploded directory under root with the archive's payload and
// moves the archive into it.
func (f *File) ExplodeTo(root string) (ports.NugetFile, error) {
	dest := f.ExplodedDirectory(root)
	placed := filepath.Join(dest, filepath.Base(f.path))

	source := f.path
	if isWithin(dest, source) {
		// Cleaning dest would remove the archive itself, so move it aside first.
		staged := filepath.Join(filepath.Dir(dest), "."+filepath.Base(f.path)+".staging")
		if err := f.fs.Copy(source, staged); err != nil {
			return nil, f.explodeErr(err, dest)
		}
		source = staged
	}

	if err := f.fs.CreateDirectory(dest); err != nil {
		return nil, f.explodeErr(err, dest)
	}
	if err := f.fs.CleanDirectory(dest); err != nil {
		return nil, f.explodeErr(err, dest)
	}

	err := f.codec.Walk(source, func(name string, r io.Reader) error {
		target, err := safeJoin(dest, name)
		if err != nil {
			return err
		}
		return f.fs.WriteFile(target, r)
	})
	if err != nil {
		return nil, f.explodeErr(err, dest)
	}

	if err := f.fs.Copy(source, placed); err != nil {
		return nil, f.explodeErr(err, dest)
	}
	if err := f.fs.DeleteFile(source); err != nil {
		return nil, f.explodeErr(err, dest)
	}

	return f.at(placed), nil
}

// CopyTo copies the archive into dir and returns a handle over the copy.
func (f *File) CopyTo(dir string) (ports.NugetFile, error) {
	target := filepath.Join(dir, filepath.Base(f.path))
	if err := f.fs.Copy(f.path, target); err != nil {
		return nil, zerr.With(zerr.With(err, "package", f.identity.Name), "version", f.identity.Version.String())
	}
	return f.at(target), nil
}

// Checksum returns the content checksum of the archive.
func (f *File) Checksum() (string, error) {
	return f.fs.Hash(f.path)
}

func (f *File) at(path string) *File {
	moved := *f
	moved.path = path
	return &moved
}

func (f *File) explodeErr(err error, dest string) error {
	err = zerr.With(err, "package", f.identity.Name)
	err = zerr.With(err, "version", f.identity.Version.String())
	return zerr.With(err, "destination", dest)
}

// safeJoin resolves a slash-separated entry name under dest, rejecting names that escape it.
func safeJoin(dest, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchiveEntry, "absolute or empty entry name"), "entry", name)
	}

	target := filepath.Join(dest, filepath.FromSlash(name))
	if !isWithin(dest, target) || target == filepath.Clean(dest) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchiveEntry, "entry escapes destination"), "entry", name)
	}
	return target, nil
}

// isWithin reports whether path lies inside dir.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
