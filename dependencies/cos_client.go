package dependencies

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/blog_service/config"
)

// COSClientInterface 定义了对象存储客户端需要实现的方法。
// - 附件的唯一权威来源是数据库，这里只负责镜像出公开访问的 URL。
type COSClientInterface interface {
	// UploadAttachment 上传附件字节并返回其公开可访问的 URL。
	UploadAttachment(ctx context.Context, objectKey string, data []byte, contentType string) (string, error)
	// DeleteObject 删除一个已镜像的对象。
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client    *cos.Client
	bucketURL *url.URL
	logger    *zap.Logger
}

// InitCOS 初始化腾讯云 COS 客户端。
// - 未启用时返回 (nil, nil)，调用方按 nil 判定跳过镜像。
func InitCOS(cfg *appConfig.COSConfig, logger *zap.Logger) (COSClientInterface, error) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("对象存储镜像未启用，附件仅保存在数据库中")
		return nil, nil
	}
	if cfg.BucketURL == "" || cfg.SecretID == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("COS 配置不完整，缺少 bucket_url/secret_id/secret_key")
	}

	bucketURL, err := url.Parse(cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL %q 失败: %w", cfg.BucketURL, err)
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	logger.Info("COS 客户端初始化成功", zap.String("bucketURL", bucketURL.String()))
	return &cosClient{client: client, bucketURL: bucketURL, logger: logger}, nil
}

// publicObjectURL 拼出对象的公开访问 URL。
func (c *cosClient) publicObjectURL(objectKey string) string {
	u := *c.bucketURL
	basePath := u.Path
	if basePath != "" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	u.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return u.String()
}

func (c *cosClient) UploadAttachment(ctx context.Context, objectKey string, data []byte, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: int64(len(data)),
		},
	}
	resp, err := c.client.Object.Put(ctx, objectKey, bytes.NewReader(data), opts)
	if err != nil {
		return "", fmt.Errorf("上传附件 %q 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("COS 附件上传失败，状态码 %d: %s", resp.StatusCode, string(body))
	}

	publicURL := c.publicObjectURL(objectKey)
	c.logger.Info("附件已镜像到 COS", zap.String("objectKey", objectKey), zap.String("url", publicURL))
	return publicURL, nil
}

func (c *cosClient) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		return fmt.Errorf("从 COS 删除对象 %q 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("COS 对象删除失败，状态码 %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
