// Package csvio exporta e importa el catálogo en CSV con las columnas de Product.
package csvio

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Charsets soportados.
const (
	CharsetUTF8        = "utf-8"
	CharsetWindows1252 = "windows-1252"
	CharsetISO88591    = "iso-8859-1"
)

func lookup(charset string) (encoding.Encoding, error) {
	switch strings.ToLower(charset) {
	case "", CharsetUTF8, "utf8":
		return nil, nil
	case CharsetWindows1252, "cp1252":
		return charmap.Windows1252, nil
	case CharsetISO88591, "latin1", "iso8859-1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("csvio: charset desconocido %q", charset)
	}
}

// encodeWriter envuelve w para escribir en el charset; los caracteres sin representación se reemplazan.
// El writer devuelto debe cerrarse para vaciar el último bloque (no cierra w).
func encodeWriter(w io.Writer, charset string) (io.WriteCloser, error) {
	enc, err := lookup(charset)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	enc, err := lookup(charset)
	if err != nil || enc == nil {
		return r, err
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
