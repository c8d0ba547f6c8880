package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse     = errors.New("parse error")
	ErrNoTag     = fmt.Errorf("%w: document has no tag", ErrParse)
	ErrNoName    = fmt.Errorf("%w: attribute has no name", ErrParse)
	ErrDuplicate = fmt.Errorf("%w: duplicate attribute", ErrParse)
)
