package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/webdiary/internal/ui"
)

// openFile is a test seam for os.Open.
var openFile = func(path string) (*os.File, error) { return os.Open(path) }

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). Lines keep their
// leading whitespace so indented markdown survives; the collected text is
// joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n"), nil
}

// openAttachment opens path as a ui.File. The MIME type comes from the file
// extension, falling back to content sniffing. The caller closes the
// returned closer once the file has been handled.
func openAttachment(path string) (ui.File, io.Closer, error) {
	f, err := openFile(path)
	if err != nil {
		return ui.File{}, nil, fmt.Errorf("open attachment: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return ui.File{}, nil, fmt.Errorf("stat attachment: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return ui.File{}, nil, fmt.Errorf("open attachment: %s is a directory", path)
	}

	typ, err := detectType(f, path)
	if err != nil {
		_ = f.Close()
		return ui.File{}, nil, err
	}

	return ui.File{
		Name: filepath.Base(path),
		Size: info.Size(),
		Type: typ,
		Data: f,
	}, f, nil
}

func detectType(f io.ReadSeeker, path string) (string, error) {
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil {
			return mt, nil
		}
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("read attachment: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind attachment: %w", err)
	}
	mt, _, err := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if err != nil {
		return "", nil
	}
	return mt, nil
}
