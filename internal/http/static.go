package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/logger"
)

// registerStatic mounts a built web UI from dir on every route outside
// /api. Paths without a matching file get index.html, so client-side
// routes survive a hard reload. A missing index.html disables the
// whole mount instead of serving a broken tree.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		logger.Warn("web ui disabled, index.html missing", "module", "http", "action", "request", "resource", "http", "result", "failed", "path", index)
		return
	}

	logger.Info("web ui enabled", "module", "http", "action", "request", "resource", "http", "result", "ok", "dir", dir)
	e.GET("/*", spaHandler(dir, index))
}

func spaHandler(dir, index string) echo.HandlerFunc {
	files := nethttp.FileServer(nethttp.Dir(dir))

	return func(c echo.Context) error {
		reqPath := c.Request().URL.Path
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			return echo.ErrNotFound
		}

		rel := strings.TrimPrefix(path.Clean(reqPath), "/")
		if rel == "" || rel == "." {
			return c.File(index)
		}

		// Real assets go through the file server; everything else is a
		// client-side route.
		if info, err := os.Stat(filepath.Join(dir, rel)); err == nil && !info.IsDir() {
			files.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		return c.File(index)
	}
}
