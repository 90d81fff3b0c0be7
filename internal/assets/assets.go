package assets

import "golang.org/x/image/font/gofont/goregular"

// FontTTF is the TrueType font used for captions on generated previews.
var FontTTF = goregular.TTF
