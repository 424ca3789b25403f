package selection

// DriveRoot reports whether sel denotes exactly one filesystem drive root and,
// if so, returns its normalized token "<Letter>:\" (uppercase letter, colon,
// backslash). Only the first item is inspected; extra items neither extend nor
// invalidate the check.
//
// Accepted shapes are the bare two-character form ("C:") and the three-character
// root with either separator ("C:\", "c:/"). Anything longer is a path inside
// the drive and is rejected, as are UNC paths and non-drive items.
func DriveRoot(sel Selection) (string, bool) {
	if sel == nil || sel.Count() == 0 {
		return "", false
	}

	path, err := sel.PathAt(0)
	if err != nil {
		return "", false
	}

	if len(path) < 2 || path[1] != ':' {
		return "", false
	}
	if len(path) == 3 && path[2] != '\\' && path[2] != '/' {
		return "", false
	}
	if len(path) > 3 {
		return "", false
	}

	letter := path[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return "", false
	}

	return string([]byte{letter, ':', '\\'}), true
}
