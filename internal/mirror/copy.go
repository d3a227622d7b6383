package mirror

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// enumerate lists every directory and every other entry below root in
// lexical walk order, spelled with root as prefix. root itself is not
// included. A symlinked root is followed.
func enumerate(root string) (dirs, files []string, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, &IOError{Op: "stat", Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &IOError{Op: "stat", Path: root, Err: fmt.Errorf("%w: not a directory", fs.ErrInvalid)}
	}
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, nil, &IOError{Op: "readlink", Path: root, Err: err}
	}

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &IOError{Op: "walk", Path: path, Err: err}
		}
		if path == walkRoot {
			return nil
		}
		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return &IOError{Op: "rel", Path: path, Err: err}
		}
		if d.IsDir() || isDirLink(path, d) {
			dirs = append(dirs, filepath.Join(root, rel))
			return nil
		}
		if err := checkRegular(path, d); err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return dirs, files, nil
}

// isDirLink reports a symlink to a directory. Such links are recreated as
// plain directories and their contents are not followed.
func isDirLink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// checkRegular accepts regular files and symlinks resolving to one. Pipes,
// sockets and devices would block or never end when opened.
func checkRegular(path string, d fs.DirEntry) error {
	if d.Type().IsRegular() {
		return nil
	}
	if d.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			return &IOError{Op: "stat", Path: path, Err: err}
		}
		if info.Mode().IsRegular() {
			return nil
		}
	}
	return &IOError{Op: "open", Path: path, Err: fmt.Errorf("%w: not a regular file", fs.ErrInvalid)}
}

// copyFile copies src to dst, which must not exist yet. Permission bits and
// modification time follow the source.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, &IOError{Op: "open", Path: src, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, &IOError{Op: "stat", Path: src, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return 0, &IOError{Op: "create", Path: dst, Err: err}
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, &IOError{Op: "copy", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return n, &IOError{Op: "close", Path: dst, Err: err}
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return n, &IOError{Op: "chtimes", Path: dst, Err: err}
	}
	return n, nil
}
