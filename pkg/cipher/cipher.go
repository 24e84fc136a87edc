package cipher

import (
	"encoding/json"
	"fmt"

	"crisislink/config"

	"github.com/fernet/fernet-go"
)

// Cipher encrypts and decrypts list-valued medical fields (allergies,
// medications, conditions) as Fernet tokens. The key is process-wide and
// loaded once from configuration.
type Cipher struct {
	key *fernet.Key
}

func NewCipher(cfg config.CipherConfig) (*Cipher, error) {
	key, err := fernet.DecodeKey(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cipher key: %w", err)
	}
	return &Cipher{key: key}, nil
}

// EncryptList serializes items to JSON and returns an opaque Fernet token.
// A nil slice encrypts as an empty list.
func (c *Cipher) EncryptList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}

	token, err := fernet.EncryptAndSign(payload, c.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt list: %w", err)
	}

	return string(token), nil
}

// DecryptList reverses EncryptList. Malformed tokens, tokens produced under a
// different key, and unparseable payloads all decode to an empty list. The
// disclosure path must stay available even when a stored blob is unreadable,
// so no error is returned.
func (c *Cipher) DecryptList(token string) []string {
	if token == "" {
		return []string{}
	}

	payload := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{c.key})
	if payload == nil {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal(payload, &items); err != nil {
		return []string{}
	}
	if items == nil {
		items = []string{}
	}

	return items
}
