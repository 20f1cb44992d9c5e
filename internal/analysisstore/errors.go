package analysisstore

import "errors"

var ErrRecordNotFound = errors.New("analysisstore: record not found")
