package playback

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPlaybackSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Playback Driver Suite")
}
