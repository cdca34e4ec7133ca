package engine

import "golang.org/x/crypto/sha3"

//
// Commit hashes a canonical, separator-free concatenation of player
// identity, salt and word with Keccak-256.
//

// Normalize maps 'A'..'Z' and 'a'..'z' to a Letter in 0..25. Any other
// byte fails with ErrInvalidLetter.
func Normalize(b byte) (Letter, error) {
	switch {
	case b >= 'a' && b <= 'z':
		return Letter(b - 'a'), nil
	case b >= 'A' && b <= 'Z':
		return Letter(b - 'A'), nil
	default:
		return 0, ErrInvalidLetter
	}
}

// MaskFits reports whether m has no bit set at position length or above,
// i.e. m < 2^length.
func MaskFits(m PositionsMask, length int) bool {
	if length >= 16 {
		return true
	}
	return m < PositionsMask(1)<<uint(length)
}

// Commit computes H(player_id_bytes ‖ salt_32 ‖ word_utf8_bytes) with no
// length prefixes or separators. Both the engine (at Commit time,
// implicitly trusting the referee's hash) and a reveal-side producer must
// use this exact encoding; changing it breaks wire compatibility for
// anyone who precomputed commitments against the old one.
func Commit(player string, salt [32]byte, word string) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(player))
	h.Write(salt[:])
	h.Write([]byte(word))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
