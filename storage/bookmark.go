package storage

import (
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"strings"
)

type bookmarkKind byte

const (
	bookmarkFile   bookmarkKind = 'f'
	bookmarkFolder bookmarkKind = 'd'
)

const bookmarkPrefix = "uibm1."

// mintBookmark encodes kind and an OS path as
// "uibm1.<kind><base64url(path)>.<crc32>".
func mintBookmark(kind bookmarkKind, osPath string) string {
	body := string(kind) + base64.RawURLEncoding.EncodeToString([]byte(osPath))
	return fmt.Sprintf("%s%s.%08x", bookmarkPrefix, body, crc32.ChecksumIEEE([]byte(body)))
}

func parseBookmark(token string) (bookmarkKind, string, bool) {
	rest, ok := strings.CutPrefix(token, bookmarkPrefix)
	if !ok {
		return 0, "", false
	}
	body, sum, ok := strings.Cut(rest, ".")
	if !ok || len(body) < 2 || sum != fmt.Sprintf("%08x", crc32.ChecksumIEEE([]byte(body))) {
		return 0, "", false
	}
	kind := bookmarkKind(body[0])
	if kind != bookmarkFile && kind != bookmarkFolder {
		return 0, "", false
	}
	p, err := base64.RawURLEncoding.DecodeString(body[1:])
	if err != nil || len(p) == 0 {
		return 0, "", false
	}
	return kind, string(p), true
}
