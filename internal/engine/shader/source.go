package shader

import (
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/learngl/internal/logger"
)

// ReadSource returns the contents of the file at path exactly as stored.
// If the file cannot be read it logs one diagnostic naming the path and
// returns an empty string, which will fail to compile downstream.
func ReadSource(path string) string {
	src, err := readSource(nil, path)
	if err != nil {
		logger.Error("shader source not found", zap.String("path", path), zap.Error(err))
		return ""
	}
	return src
}

// ReadSourceFS is ReadSource for a file inside fsys.
func ReadSourceFS(fsys fs.FS, name string) string {
	src, err := readSource(fsys, name)
	if err != nil {
		logger.Error("shader source not found", zap.String("path", name), zap.Error(err))
		return ""
	}
	return src
}

// AttachSource sets text as the complete source of shader. Nothing is
// validated locally; the driver's compiler sees the text verbatim.
func AttachSource(ctx Context, shader uint32, text string) {
	ctx.ShaderSource(shader, text)
}

// Load reads path and attaches it to shader. It does not compile.
func Load(ctx Context, shader uint32, path string) {
	AttachSource(ctx, shader, ReadSource(path))
}

// readSource reads from fsys, or from disk when fsys is nil.
func readSource(fsys fs.FS, name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if fsys != nil {
		data, err = fs.ReadFile(fsys, name)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
