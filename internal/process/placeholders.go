package process

import "strings"

// Substitute replaces the wallpaper set-command placeholders {image},
// {default_image}, and {display} in command.
func Substitute(command, image, defaultImage, display string) string {
	r := strings.NewReplacer(
		"{image}", image,
		"{default_image}", defaultImage,
		"{display}", display,
	)
	return r.Replace(command)
}
