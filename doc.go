// memetxt is a package to render memes: a base image plus two
// stroked text captions, flattened into a single output image.
//
// Common usage depends only on a couple types. First, you create a
// [Renderer] with a font library:
//   lib := font.NewDefaultLibrary()
//   _, _, err := lib.ParseAllFromPath("path/to/fonts")
//   if err != nil { ... }
//   renderer := memetxt.NewRenderer(lib)
//   renderer.SetCache(cache.NewDefaultCache(8*1024*1024))
//
// Then you describe the meme with a [RenderRequest]. The [StandardLayout]
// mirrors the classic editor screen, with a navigation bar, a tool bar
// and caption bands at the top and bottom:
//   layout := memetxt.NewStandardLayout(600, 900)
//   request := layout.Request(photo, "TOP", "BOTTOM", memetxt.DefaultStyle())
//   result, err := renderer.Render(request)
//   if err != nil { ... }
//
// The editor chrome never appears in the result: the image frame is
// expanded into the space the bars took while editing (see [EditingFrame]()
// and [RenderFrame]()), and captions are positioned in canvas coordinates.
//
// Renderers can be used concurrently once configured. Decoding and
// encoding images is left to the caller (see the codec subpackage).
package memetxt
