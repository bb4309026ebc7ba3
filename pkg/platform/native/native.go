// Package native implements pkg/platform.Platform against the real OS:
// stdin/stdout for Console, os.ReadFile/os.Stat for FileSystem, time.Now
// for the clock.
package native

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cwbudde/golisp/pkg/platform"
)

// NativePlatform is the default Platform used outside of tests: the
// process's real stdin/stdout/filesystem/clock.
type NativePlatform struct {
	console *nativeConsole
	fs      nativeFS
}

// NewNativePlatform builds a Platform backed by os.Stdin/os.Stdout.
func NewNativePlatform() *NativePlatform {
	return &NativePlatform{
		console: newNativeConsole(os.Stdin, os.Stdout),
	}
}

func (p *NativePlatform) Console() platform.Console  { return p.console }
func (p *NativePlatform) FS() platform.FileSystem     { return p.fs }
func (p *NativePlatform) Now() time.Time              { return time.Now() }

type nativeConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newNativeConsole(in io.Reader, out io.Writer) *nativeConsole {
	return &nativeConsole{in: bufio.NewReader(in), out: out}
}

func (c *nativeConsole) ReadLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, true
}

func (c *nativeConsole) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

type nativeFS struct{}

func (nativeFS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (nativeFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
