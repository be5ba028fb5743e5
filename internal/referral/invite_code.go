package referral

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	inviteCodePrefixLen = 6
	inviteCodeSuffixLen = 4
	inviteCodeAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var upper = cases.Upper(language.Und)

// invitePrefix is the first six characters of name with whitespace removed, upper-cased
func invitePrefix(name string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)

	runes := []rune(compact)
	if len(runes) > inviteCodePrefixLen {
		runes = runes[:inviteCodePrefixLen]
	}
	return upper.String(string(runes))
}

func randomSuffix() (string, error) {
	var b strings.Builder
	alphabetLen := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := 0; i < inviteCodeSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		b.WriteByte(inviteCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// generateInviteCode returns PREFIX-XXXX
func generateInviteCode(name string) (string, error) {
	suffix, err := randomSuffix()
	if err != nil {
		return "", err
	}
	return invitePrefix(name) + "-" + suffix, nil
}
