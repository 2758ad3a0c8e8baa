// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestHashString_MatchesHMAC(t *testing.T) {
	h := hmac.New(sha256.New, []byte("key"))
	h.Write([]byte("token"))
	want := hex.EncodeToString(h.Sum(nil))

	if got := HashString("token", "key"); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestHashString_KeyAndInputMatter(t *testing.T) {
	base := HashString("token", "key")

	if HashString("token", "key") != base {
		t.Fatal("hash must be deterministic")
	}
	if HashString("token", "other-key") == base {
		t.Fatal("different keys must give different hashes")
	}
	if HashString("token2", "key") == base {
		t.Fatal("different inputs must give different hashes")
	}
	if len(base) != sha256.Size*2 {
		t.Fatalf("expected hex digest of %d chars, got %d", sha256.Size*2, len(base))
	}
}
