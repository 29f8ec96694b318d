package math

// Letterbox places a srcW x srcH image inside a dstW x dstH area, centered
// and scaled uniformly. Integer factors are preferred so pixels stay square;
// when the area is smaller than the image it shrinks to fit instead.
func Letterbox(srcW, srcH, dstW, dstH int) (x, y, w, h int) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, 0, 0
	}
	scale := min(dstW/srcW, dstH/srcH)
	if scale >= 1 {
		w, h = srcW*scale, srcH*scale
	} else if dstW*srcH <= dstH*srcW {
		w, h = dstW, srcH*dstW/srcW
	} else {
		w, h = srcW*dstH/srcH, dstH
	}
	return (dstW - w) / 2, (dstH - h) / 2, w, h
}
