package track

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mitchelldurbincs/GridRacingRL/internal/game/core"
)

const ovalYAML = `
id: 7
name: oval
rows:
  - "#FFF#"
  - "#.*.#"
  - "#SSS#"
legend:
  "*":
    speed_modifier: 2
`

func TestParse(t *testing.T) {
	Convey("Given a YAML track definition with a legend", t, func() {
		tr, err := Parse([]byte(ovalYAML))
		So(err, ShouldBeNil)

		Convey("The track is built with the custom glyph", func() {
			So(tr.ID, ShouldEqual, uint64(7))
			So(tr.Name, ShouldEqual, "oval")
			tile, _ := tr.TileAt(2, 1)
			So(tile.Properties.SpeedModifier, ShouldEqual, uint32(2))
			So(tr.FastestTickTime, ShouldEqual, uint64(2))
		})
	})

	Convey("Multi-rune legend keys are rejected", t, func() {
		_, err := Parse([]byte("id: 1\nrows: [\"FS\"]\nlegend:\n  \"ab\": {speed_modifier: 1}\n"))
		So(errors.Is(err, core.ErrInvalidTrack), ShouldBeTrue)
	})

	Convey("Malformed YAML is reported", t, func() {
		_, err := Parse([]byte("rows: [unterminated"))
		So(err, ShouldNotBeNil)
	})
}

func TestLoadDir(t *testing.T) {
	Convey("Given a directory of track files", t, func() {
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(ovalYAML), 0o644), ShouldBeNil)
		So(os.WriteFile(filepath.Join(dir, "a.yml"), []byte("id: 3\nname: dash\nrows: [\"F..S\"]\n"), 0o644), ShouldBeNil)
		So(os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644), ShouldBeNil)

		tracks, err := LoadDir(context.Background(), dir)
		So(err, ShouldBeNil)

		Convey("Tracks are loaded in id order", func() {
			So(len(tracks), ShouldEqual, 2)
			So(tracks[0].ID, ShouldEqual, uint64(3))
			So(tracks[1].ID, ShouldEqual, uint64(7))
		})

		Convey("Duplicate ids fail the load", func() {
			So(os.WriteFile(filepath.Join(dir, "c.yaml"), []byte(ovalYAML), 0o644), ShouldBeNil)
			_, err := LoadDir(context.Background(), dir)
			So(errors.Is(err, core.ErrInvalidTrack), ShouldBeTrue)
		})
	})
}
