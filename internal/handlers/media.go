// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"

	"imoguru/internal/imaging"
	"imoguru/internal/middleware"
	"imoguru/internal/models"
	"imoguru/internal/storage"
	"imoguru/internal/store"
)

const (
	// maxUploadBytes caps photo and document uploads.
	maxUploadBytes = 25 << 20 // 25 MiB

	// documentURLTTL is how long a presigned document link stays valid.
	documentURLTTL = 15 * time.Minute
)

// imageExtensions maps accepted photo content types to stored extensions.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Media groups the photo and document handlers. Files live in object
// storage; the stores hold metadata only.
type Media struct {
	media      *store.MediaStore
	properties *store.PropertyStore
	storage    *storage.Client
}

// NewMedia creates a new Media handler group. storage may be nil when no
// object storage is configured; uploads then return 503.
func NewMedia(media *store.MediaStore, properties *store.PropertyStore, sc *storage.Client) *Media {
	return &Media{media: media, properties: properties, storage: sc}
}

// property resolves the {id} route parameter to one of the session
// company's listings, writing the error response itself on failure.
func (h *Media) property(w http.ResponseWriter, r *http.Request) *models.Property {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid property id")
		return nil
	}

	p, err := h.properties.FindByID(sess.CompanyID, id)
	if err != nil {
		slog.Error("find property failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil
	}
	if p == nil {
		respondError(w, http.StatusNotFound, "property not found")
		return nil
	}
	return p
}

// ListImages returns a listing's photos, cover first.
func (h *Media) ListImages(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	images, err := h.media.ListImages(p.ID)
	if err != nil {
		slog.Error("list property images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if images == nil {
		images = []models.PropertyImage{}
	}
	respondJSON(w, http.StatusOK, images)
}

// UploadImage accepts one photo as multipart form data, stores the
// original and a thumbnail, and records the metadata. The first photo of
// a listing automatically becomes its cover.
func (h *Media) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	p := h.property(w, r)
	if p == nil {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		respondError(w, http.StatusUnsupportedMediaType, "unsupported image type")
		return
	}

	base := fmt.Sprintf("properties/%s/%s", p.ID, uuid.NewString())
	key := base + ext
	thumbKey := base + "_thumb.jpg"

	thumb, err := imaging.Thumbnail(data, imaging.ThumbMaxDim)
	if err != nil {
		slog.Error("thumbnail failed", "file", header.Filename, "error", err)
		respondError(w, http.StatusUnprocessableEntity, "could not process image")
		return
	}

	bucket := h.storage.PhotoBucket()
	if err := h.storage.Upload(r.Context(), bucket, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("photo upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}
	if err := h.storage.Upload(r.Context(), bucket, thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
		slog.Error("thumbnail upload failed", "key", thumbKey, "error", err)
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	img, err := h.media.CreateImage(&models.PropertyImage{
		PropertyID:  p.ID,
		S3Key:       key,
		ThumbS3Key:  &thumbKey,
		URL:         h.storage.FileURL(key),
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	})
	if err != nil {
		slog.Error("create image record failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, img)
}

// SetCover flags one photo as the listing's cover.
func (h *Media) SetCover(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	imageID, err := uuidParam(r, "imageID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	img, err := h.media.FindImage(imageID)
	if err != nil {
		slog.Error("find image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if img == nil || img.PropertyID != p.ID {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}

	if err := h.media.SetCover(p.ID, imageID); err != nil {
		slog.Error("set cover failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type reorderRequest struct {
	ImageIDs []uuid.UUID `json:"image_ids"`
}

// ReorderImages rewrites the display order of a listing's photos.
func (h *Media) ReorderImages(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.media.Reorder(p.ID, req.ImageIDs); err != nil {
		slog.Error("reorder images failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// DeleteImage removes one photo record and its stored files. Object
// deletion is best-effort — an orphaned file is preferable to a dangling
// database row.
func (h *Media) DeleteImage(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	imageID, err := uuidParam(r, "imageID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	img, err := h.media.FindImage(imageID)
	if err != nil {
		slog.Error("find image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if img == nil || img.PropertyID != p.ID {
		respondError(w, http.StatusNotFound, "image not found")
		return
	}

	if err := h.media.DeleteImage(imageID); err != nil {
		slog.Error("delete image failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if h.storage != nil {
		if err := h.storage.Delete(r.Context(), h.storage.PhotoBucket(), img.S3Key); err != nil {
			slog.Warn("photo object delete failed", "key", img.S3Key, "error", err)
		}
		if img.ThumbS3Key != nil {
			if err := h.storage.Delete(r.Context(), h.storage.PhotoBucket(), *img.ThumbS3Key); err != nil {
				slog.Warn("thumbnail object delete failed", "key", *img.ThumbS3Key, "error", err)
			}
		}
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ListDocuments returns a listing's documents, newest first.
func (h *Media) ListDocuments(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	docs, err := h.media.ListDocuments(p.ID)
	if err != nil {
		slog.Error("list documents failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if docs == nil {
		docs = []models.PropertyDocument{}
	}
	respondJSON(w, http.StatusOK, docs)
}

// UploadDocument stores one document in the private bucket.
func (h *Media) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	p := h.property(w, r)
	if p == nil {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := fmt.Sprintf("documents/%s/%s%s", p.ID, uuid.NewString(), path.Ext(header.Filename))
	if err := h.storage.Upload(r.Context(), h.storage.DocumentBucket(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		slog.Error("document upload failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	doc, err := h.media.CreateDocument(&models.PropertyDocument{
		PropertyID:   p.ID,
		OriginalName: header.Filename,
		S3Key:        key,
		ContentType:  contentType,
		SizeBytes:    int64(len(data)),
		UploaderID:   sess.UserID,
	})
	if err != nil {
		slog.Error("create document record failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

// DocumentURL returns a short-lived presigned download link for one
// document.
func (h *Media) DocumentURL(w http.ResponseWriter, r *http.Request) {
	if h.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	p := h.property(w, r)
	if p == nil {
		return
	}

	docID, err := uuidParam(r, "docID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.media.FindDocument(docID)
	if err != nil {
		slog.Error("find document failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if doc == nil || doc.PropertyID != p.ID {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}

	url, err := h.storage.PresignedURL(r.Context(), doc.S3Key, documentURLTTL)
	if err != nil {
		slog.Error("presign document failed", "key", doc.S3Key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DeleteDocument removes one document record and its stored file.
func (h *Media) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	p := h.property(w, r)
	if p == nil {
		return
	}

	docID, err := uuidParam(r, "docID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.media.FindDocument(docID)
	if err != nil {
		slog.Error("find document failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if doc == nil || doc.PropertyID != p.ID {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}

	if err := h.media.DeleteDocument(docID); err != nil {
		slog.Error("delete document failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if h.storage != nil {
		if err := h.storage.Delete(r.Context(), h.storage.DocumentBucket(), doc.S3Key); err != nil {
			slog.Warn("document object delete failed", "key", doc.S3Key, "error", err)
		}
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
