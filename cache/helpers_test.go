package cache

import "golang.org/x/image/font/gofont/gobold"

func goboldTTF() []byte { return gobold.TTF }
