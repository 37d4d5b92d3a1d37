package kegg

import (
	"archive/tar"
	"bufio"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"

	"github.com/mkossman/keggdef/internal/log"
)

// ReadFile loads MODULE records from path. KEGG distributes module data both
// as plain flat files and as gzipped files or tarballs, so the content type
// is sniffed rather than taken from the extension: plain text is parsed
// directly, gzip is decompressed, and a tar stream (compressed or not) has
// each regular entry parsed and concatenated.
func ReadFile(path string) ([]Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "detecting content type of %s", path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "rewinding %s", path)
	}
	log.Detailedf("%s detected as %s", path, mtype.String())

	var r io.Reader = f
	if mtype.Is("application/gzip") {
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			return nil, errors.Wrapf(zerr, "decompressing %s", path)
		}
		defer zr.Close()
		r = zr
	}

	buffered := bufio.NewReader(r)
	if isTar(buffered) {
		return readTar(buffered)
	}
	return ParseModules(buffered)
}

func isTar(r *bufio.Reader) bool {
	// A tar header is 512 bytes; shorter content cannot be a tar stream.
	head, err := r.Peek(512)
	if err != nil {
		return false
	}
	return mimetype.Detect(head).Is("application/x-tar")
}

func readTar(r io.Reader) ([]Module, error) {
	var modules []Module
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return modules, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading tar archive")
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		log.Tracef("parsing archive entry %s", hdr.Name)
		parsed, err := ParseModules(tr)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing archive entry %s", hdr.Name)
		}
		modules = append(modules, parsed...)
	}
}
