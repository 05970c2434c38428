package handler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/kbdigital/ytselleradda/internal/middleware"
)

// StaticHandler serves the built front-end. Any path that is not a file
// under distDir gets index.html with 200 so client-side routes resolve.
type StaticHandler struct {
	distDir string
}

func NewStaticHandler(distDir string) *StaticHandler {
	if abs, err := filepath.Abs(distDir); err == nil {
		distDir = abs
	}
	return &StaticHandler{distDir: distDir}
}

// Serve handles GET /*
func (h *StaticHandler) Serve(c fiber.Ctx) error {
	if path, ok := h.resolve(c.Path()); ok {
		return c.SendFile(path)
	}

	index := filepath.Join(h.distDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, middleware.CodeNotFound, "Front-end build not found")
	}
	c.Set("Cache-Control", "no-cache")
	return c.SendFile(index)
}

// resolve maps a request path to a regular file inside distDir.
// Cleaning against "/" keeps ".." segments from leaving the directory.
func (h *StaticHandler) resolve(reqPath string) (string, bool) {
	clean := filepath.Clean("/" + strings.TrimPrefix(reqPath, "/"))
	if clean == "/" {
		return "", false
	}
	path := filepath.Join(h.distDir, filepath.FromSlash(clean))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
