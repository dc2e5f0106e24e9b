package parsetab

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/rezi"

	"github.com/dekarrin/eqlparser/diag"
)

// ArtifactVersion is the current .bc format version byte (spec.md §6.1).
// A version mismatch on load produces an IncompatibleSpec diagnostic
// rather than attempting to interpret bytes written by an incompatible
// writer.
const ArtifactVersion byte = 1

// WriteArtifact serializes t to w in the internal .bc ABI (spec.md §6.1):
// a version byte followed by a rezi-encoded Tables. rezi.EncBinary walks
// Tables by reflection the same way the teacher's save-game encoding
// walks game.State (_examples/dekarrin-tunaq/server/dao/sqlite/sqlite.go's
// convertToDB_GameStatePtr) — Tables is exactly that shape, nested
// maps/slices/structs of ints and strings, so there's no bespoke binary
// format to hand-roll here.
func WriteArtifact(w io.Writer, t *Tables) error {
	if _, err := w.Write([]byte{ArtifactVersion}); err != nil {
		return err
	}
	_, err := w.Write(rezi.EncBinary(t))
	return err
}

// ReadArtifact deserializes Tables from r, or returns a
// diag.IncompatibleSpec diagnostic if the version byte doesn't match
// ArtifactVersion (spec.md §6.1 "Compatibility") or if the rezi payload is
// corrupt or truncated.
func ReadArtifact(r io.Reader) (*Tables, *diag.Diagnostic) {
	var versionBuf [1]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return nil, diag.NewIncompatibleSpec("parsetab: could not read artifact version: " + err.Error())
	}
	if versionBuf[0] != ArtifactVersion {
		return nil, diag.NewIncompatibleSpec(fmt.Sprintf("parsetab: artifact version %d is incompatible with expected version %d", versionBuf[0], ArtifactVersion))
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, diag.NewIncompatibleSpec("parsetab: could not read artifact body: " + err.Error())
	}

	t := &Tables{}
	n, err := rezi.DecBinary(rest, t)
	if err != nil {
		return nil, diag.NewIncompatibleSpec("parsetab: REZI decode: " + err.Error())
	}
	if n != len(rest) {
		return nil, diag.NewIncompatibleSpec(fmt.Sprintf("parsetab: REZI decoded byte count mismatch; only consumed %d/%d bytes", n, len(rest)))
	}

	return t, nil
}

// LoadArtifactFile opens path and reads a Tables artifact from it
// (backing eql.PreloadSpec, spec.md §6.3).
func LoadArtifactFile(path string) (*Tables, *diag.Diagnostic) {
	f, err := os.Open(path)
	if err != nil {
		return nil, diag.NewIncompatibleSpec("parsetab: " + err.Error())
	}
	defer f.Close()
	return ReadArtifact(f)
}
