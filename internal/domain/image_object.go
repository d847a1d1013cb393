package domain

// ImageObject описывает бинарное изображение, которое хранится в S3
type ImageObject struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size     *int64
	MimeType *string // Example: "image/jpeg"
}

func NewImageObject(id string, bucket string, objectKey string, data []byte, size *int64, mimeType *string) *ImageObject {
	return &ImageObject{
		ID:        id,
		Bucket:    bucket,
		ObjectKey: objectKey,
		Bytes:     data,
		Size:      size,
		MimeType:  mimeType,
	}
}
