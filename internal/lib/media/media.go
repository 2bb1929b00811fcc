// Package media stores uploaded images on the local filesystem and serves
// them under a public URL prefix.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotImage    = errors.New("file is not a supported image")
	ErrForeignPath = errors.New("path is outside the media store")
)

// Folders images are grouped under, one per owning record type.
const (
	FolderVenues       = "venues"
	FolderVenueGallery = "venues/gallery"
	FolderPopupVenues  = "popup_venues"
	FolderSchool       = "school"
	FolderAbout        = "about"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Store struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) *Store {
	return &Store{
		dir:     dir,
		baseURL: "/" + strings.Trim(baseURL, "/"),
	}
}

// BaseURL is the URL prefix under which stored files are served.
func (s *Store) BaseURL() string {
	return s.baseURL
}

// Handler serves stored files; mount it under BaseURL. Directories are not
// listed.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix(s.baseURL, http.FileServer(filesOnly{http.Dir(s.dir)}))
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}

	return file, nil
}

// Save copies an uploaded image into folder under a random name and returns
// its public URL.
func (s *Store) Save(folder string, fh *multipart.FileHeader) (string, error) {
	const op = "media.Save"

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	return s.save(op, folder, f)
}

func (s *Store) save(op, folder string, r io.Reader) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%s: %w", op, ErrNotImage)
	}
	head = head[:n]

	ext, ok := extensions[http.DetectContentType(head)]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrNotImage)
	}

	dir := filepath.Join(s.dir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name := uuid.NewString() + ext
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if _, err := io.Copy(out, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		out.Close()
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path.Join(s.baseURL, folder, name), nil
}

// Remove deletes the file behind a URL returned by Save. Missing files and
// empty URLs are not an error.
func (s *Store) Remove(url string) error {
	const op = "media.Remove"

	if url == "" {
		return nil
	}

	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok || strings.Contains(rel, "..") {
		return fmt.Errorf("%s: %q: %w", op, url, ErrForeignPath)
	}

	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
