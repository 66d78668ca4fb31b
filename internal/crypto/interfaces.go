package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec performs the one-way credential transforms of the platform.
// It knows nothing about storage, transport or users.
type Codec interface {
	// Transform returns the salted one-way digest of a plaintext password.
	// Two calls with the same input yield different digests.
	Transform(plaintext string) (string, error)

	// Verify reports whether plaintext matches a digest produced by Transform.
	Verify(plaintext, digest string) bool

	// DeriveActivationCode returns the keyed one-way code for an account id.
	// The result is deterministic so it can be matched by equality.
	DeriveActivationCode(id string) string
}
