// Package utils содержит вспомогательные функции,
// в том числе для генерации случайных строк.
package utils

import "math/rand/v2"

// Charset — алфавит shortcode: латинские буквы обоих регистров и цифры.
const Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz0123456789"

// StringWithCharset возвращает строку длины length,
// символы берутся случайно из заданного charset.
func StringWithCharset(length int, charset string) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}

// RandomString возвращает случайную строку длины length из Charset.
func RandomString(length int) string {
	return StringWithCharset(length, Charset)
}
