package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	log "github.com/sirupsen/logrus"
)

// CheckError drains the GL error queue. Every pending error is logged under
// label and the first one is returned.
func CheckError(label string) error {
	var first error
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		log.WithFields(log.Fields{"label": label, "code": fmt.Sprintf("0x%04x", code)}).Error("glError")
		if first == nil {
			first = fmt.Errorf("%s: glError 0x%04x", label, code)
		}
	}
	return first
}
