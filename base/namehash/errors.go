package namehash

import "errors"

var ErrInvalidNode = errors.New("namehash: parent node must be 32 bytes")
