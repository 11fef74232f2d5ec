package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func PrintSuccess(text string) {
	fmt.Println(render(successStyle, text))
}
func PrintError(text string) {
	fmt.Println(render(errorStyle, text))
}
func PrintWarning(text string) {
	fmt.Println(render(warningStyle, text))
}
func PrintInfo(text string) {
	fmt.Println(render(infoStyle, text))
}
func PrintHeader(text string) {
	fmt.Println(render(headerStyle, text))
}
func FSuccess(text string) string {
	return render(successStyle, text)
}
func FError(text string) string {
	return render(errorStyle, text)
}
func FWarning(text string) string {
	return render(warningStyle, text)
}
func FInfo(text string) string {
	return render(infoStyle, text)
}
func FDebug(text string) string {
	return render(debugStyle, text)
}
func FHeader(text string) string {
	return render(headerStyle, text)
}

// FStatus colorizes an HTTP status code by class: 2xx green, 3xx yellow,
// everything else red.
func FStatus(code int) string {
	text := fmt.Sprintf("%d", code)
	switch {
	case code >= 200 && code < 300:
		return render(successStyle, text)
	case code >= 300 && code < 400:
		return render(warningStyle, text)
	default:
		return render(errorStyle, text)
	}
}

func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // Default fallback width
	}
	return width
}
