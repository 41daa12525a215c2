package util

import (
	"unicode"
)

// find the position of byte ch in the string s start from offset
//
// return: -1 if byte ch is not found
func findChar(s string, offset int, ch byte) int {
	for i := offset; i < len(s); i++ {
		if s[i] == '\\' {
			i++
		} else if s[i] == ch {
			return i
		}
	}
	return -1
}

// return the first position of non-space char from offset, -1 if none
func skipSpace(s string, offset int) int {
	for i := offset; i < len(s); i++ {
		if !unicode.IsSpace(rune(s[i])) {
			return i
		}
	}
	return -1
}

func appendArgument(arg string, args []string) []string {
	if len(arg) >= 2 && (arg[0] == '"' || arg[0] == '\'') && arg[len(arg)-1] == arg[0] {
		return append(args, arg[1:len(arg)-1])
	}
	return append(args, arg)
}

// SplitArgs splits an argument string on white space. Single or double
// quoted parts are kept together with the quotes removed. The result is an
// argument vector, nothing is ever handed to a shell.
func SplitArgs(s string) []string {
	args := make([]string, 0)
	n := len(s)
	for i := 0; i < n; {
		j := skipSpace(s, i)
		if j == -1 {
			break
		}
		i = j
		for ; j < n; j++ {
			if unicode.IsSpace(rune(s[j])) {
				args = appendArgument(s[i:j], args)
				i = j + 1
				break
			} else if s[j] == '\\' {
				j++
			} else if s[j] == '"' || s[j] == '\'' {
				k := findChar(s, j+1, s[j])
				if k == -1 {
					args = appendArgument(s[i:], args)
					i = n
				} else {
					args = appendArgument(s[i:k+1], args)
					i = k + 1
				}
				break
			}
		}
		if j >= n {
			args = appendArgument(s[i:], args)
			i = n
		}
	}
	return args
}
