package codec

import (
	"crypto/aes"

	"github.com/andreburgaud/crypt2go/ecb"
	"github.com/andreburgaud/crypt2go/padding"
	"github.com/pkg/errors"
)

// Pad appends PKCS#7 padding to data so its length is a multiple of
// blockSize. Aligned input gains a full block of padding.
func Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, errors.Errorf("invalid PKCS#7 block size %d", blockSize)
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	padded, err := padding.NewPkcs7Padding(blockSize).Pad(buf)
	if err != nil {
		return nil, errors.Wrap(err, "padding")
	}
	return padded, nil
}

// Unpad strips and validates PKCS#7 padding.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, errors.Errorf("invalid PKCS#7 block size %d", blockSize)
	}
	unpadded, err := padding.NewPkcs7Padding(blockSize).Unpad(data)
	if err != nil {
		return nil, errors.Wrap(err, "unpadding")
	}
	return unpadded, nil
}

// EncryptAESECB pads pt and encrypts it with AES in ECB mode.
func EncryptAESECB(key, pt []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "creating AES cipher")
	}
	mode := ecb.NewECBEncrypter(block)
	padded, err := Pad(pt, mode.BlockSize())
	if err != nil {
		return nil, err
	}
	ct := make([]byte, len(padded))
	mode.CryptBlocks(ct, padded)
	return ct, nil
}

// DecryptAESECB decrypts ct with AES in ECB mode and removes its padding.
func DecryptAESECB(key, ct []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "creating AES cipher")
	}
	mode := ecb.NewECBDecrypter(block)
	if len(ct) == 0 || len(ct)%mode.BlockSize() != 0 {
		return nil, errors.Errorf("ciphertext length %d is not a positive multiple of block size %d", len(ct), mode.BlockSize())
	}
	pt := make([]byte, len(ct))
	mode.CryptBlocks(pt, ct)
	return Unpad(pt, mode.BlockSize())
}
