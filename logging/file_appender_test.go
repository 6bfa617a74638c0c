package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"
)

func TestFileAppender(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "robot.log")
	appender := NewFileAppender(fn)

	logger := NewBlankLogger("file")
	logger.SetLevel(INFO)
	logger.AddAppender(appender)

	logger.Debugw("not written", "x", 1)
	logger.Infow("written", "motor", "steer")
	test.That(t, logger.Sync(), test.ShouldBeNil)
	test.That(t, appender.Close(), test.ShouldBeNil)

	contents, err := os.ReadFile(fn)
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")
	test.That(t, lines, test.ShouldHaveLength, 1)
	test.That(t, lines[0], test.ShouldContainSubstring, "INFO\tfile\t")
	test.That(t, lines[0], test.ShouldContainSubstring, "written\t{\"motor\":\"steer\"}")
}
