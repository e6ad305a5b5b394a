// Package pathutil provides path building utilities for rendering
// validation locations.
//
// The primary type is [PathBuilder], which collects field and index
// segments and materializes "pSubmits[1].pWaitSemaphores[0]" style text
// only when [PathBuilder.String] is called.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.SetPrefix("vkQueueSubmit(): ")
//	path.Push("pSubmits")
//	path.PushIndex(1)
//	path.Push("pWaitSemaphores")
//	msg := path.String() // "vkQueueSubmit(): pSubmits[1].pWaitSemaphores"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for the code
// generators. It rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err // symlink detected
//	}
package pathutil
