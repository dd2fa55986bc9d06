package source

// Package source contains the asset-store collaborators: scanning a folder
// for image files, fetching images over HTTP, and decoding/downscaling them
// to the carousel's target size.
