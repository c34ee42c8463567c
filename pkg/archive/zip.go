package archive

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirsh/pkg/errors"
	"github.com/arthur-debert/dirsh/pkg/logging"
	"github.com/arthur-debert/dirsh/pkg/types"
)

// Archiver packs filesystem trees into zip archives and unpacks them again.
type Archiver struct {
	fs        types.FS
	chunkSize int
	log       zerolog.Logger
}

// New creates an Archiver that streams file contents in chunkSize-byte
// buffers.
func New(fsys types.FS, chunkSize int) *Archiver {
	return &Archiver{
		fs:        fsys,
		chunkSize: chunkSize,
		log:       logging.GetLogger("archive"),
	}
}

// ZipPath derives the archive destination for a source path: a sibling of
// the source whose name is the source's base name truncated at the first
// dot, with ".zip" appended. Two sources sharing a stem therefore map to
// the same archive ("report.draft" and "report.final" both become
// "report.zip"); the later pack silently overwrites the earlier one.
func ZipPath(source string) string {
	stem := filepath.Base(source)
	if i := strings.Index(stem, "."); i != -1 {
		stem = stem[:i]
	}
	return filepath.Join(filepath.Dir(source), stem+".zip")
}

// Pack archives the file or directory at source and returns the archive
// path. Hidden entries (and their subtrees) are skipped. A pre-existing
// archive at the destination is overwritten without warning.
func (a *Archiver) Pack(source string) (string, error) {
	if _, err := a.fs.Stat(source); err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "no such path %s", source)
	}

	zipPath := ZipPath(source)
	out, err := a.fs.Create(zipPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrArchiveCreate, "cannot create archive %s", zipPath)
	}

	zw := zip.NewWriter(out)
	packErr := a.pack(zw, source, filepath.Base(source))

	if err := zw.Close(); err != nil && packErr == nil {
		packErr = errors.Wrapf(err, errors.ErrArchiveCreate, "cannot finalize archive %s", zipPath)
	}
	if err := out.Close(); err != nil && packErr == nil {
		packErr = errors.Wrapf(err, errors.ErrArchiveCreate, "cannot close archive %s", zipPath)
	}
	if packErr != nil {
		// Partial archives are left in place; nothing is rolled back.
		return "", packErr
	}

	a.log.Debug().Str("source", source).Str("archive", zipPath).Msg("Packed archive")
	return zipPath, nil
}

// pack adds the entry at path under the given archive-relative name,
// recursing depth-first in pre-order for directories. Children keep the
// native directory listing order.
func (a *Archiver) pack(zw *zip.Writer, path, name string) error {
	if hidden(path) {
		return nil
	}

	info, err := a.fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", path)
	}

	if info.IsDir() {
		entries, err := a.fs.ReadDir(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIO, "cannot read directory %s", path)
		}
		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			if err := a.pack(zw, child, name+"/"+entry.Name()); err != nil {
				return err
			}
		}
		// No explicit directory entry: directories are implicit in
		// the slash-separated file names.
		return nil
	}

	w, err := zw.Create(name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCreate, "cannot create archive entry %s", name)
	}

	src, err := a.fs.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot open %s", path)
	}
	defer func() { _ = src.Close() }()

	if _, err := io.CopyBuffer(w, src, make([]byte, a.chunkSize)); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write archive entry %s", name)
	}
	return nil
}

// Unpack extracts the archive at archivePath into the archive's parent
// directory and returns the extraction root: the first entry's first path
// segment joined to the parent, or the parent itself for an empty archive.
func (a *Archiver) Unpack(archivePath string) (string, error) {
	info, err := a.fs.Stat(archivePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "no such archive %s", archivePath)
	}

	rc, err := a.fs.Open(archivePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrArchiveRead, "cannot open archive %s", archivePath)
	}
	defer func() { _ = rc.Close() }()

	ra, size, err := readerAt(rc, info.Size())
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrArchiveRead, "cannot read archive %s", archivePath)
	}

	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrArchiveRead, "cannot open archive %s", archivePath)
	}

	parent := filepath.Dir(archivePath)
	root := parent
	if len(zr.File) > 0 {
		first := strings.SplitN(zr.File[0].Name, "/", 2)[0]
		root = filepath.Join(parent, first)
	}

	for _, f := range zr.File {
		if err := a.extract(f, parent); err != nil {
			return "", err
		}
	}

	a.log.Debug().Str("archive", archivePath).Str("root", root).Int("entries", len(zr.File)).Msg("Unpacked archive")
	return root, nil
}

// extract writes a single archive entry below parent.
func (a *Archiver) extract(f *zip.File, parent string) error {
	target := filepath.Join(parent, filepath.FromSlash(f.Name))

	// Entries must stay below the extraction parent.
	if !strings.HasPrefix(target, filepath.Clean(parent)+string(filepath.Separator)) {
		return errors.Newf(errors.ErrArchiveRead, "archive entry %s escapes extraction root", f.Name)
	}

	if f.FileInfo().IsDir() {
		return a.ensureDir(target)
	}

	// The packer never emits directory entries, so the directory check
	// observes the filesystem, not the archive.
	if info, err := a.fs.Stat(target); err == nil && info.IsDir() {
		return a.ensureDir(target)
	}

	if err := a.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", target)
	}

	src, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveRead, "cannot read archive entry %s", f.Name)
	}
	defer func() { _ = src.Close() }()

	dst, err := a.fs.Create(target)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", target)
	}

	_, copyErr := io.CopyBuffer(dst, src, make([]byte, a.chunkSize))
	closeErr := dst.Close()
	if copyErr != nil {
		return errors.Wrapf(copyErr, errors.ErrIO, "cannot extract %s", target)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, errors.ErrIO, "cannot extract %s", target)
	}
	return nil
}

func (a *Archiver) ensureDir(target string) error {
	if err := a.fs.MkdirAll(target, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", target)
	}
	return nil
}

// readerAt adapts the capability's ReadCloser for the zip reader, which
// needs random access. OS files satisfy io.ReaderAt directly; anything
// else is buffered in memory.
func readerAt(rc io.ReadCloser, size int64) (io.ReaderAt, int64, error) {
	if ra, ok := rc.(io.ReaderAt); ok {
		return ra, size, nil
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(data), int64(len(data)), nil
}

// hidden reports whether the entry at path is hidden on this platform.
func hidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != string(filepath.Separator)
}
