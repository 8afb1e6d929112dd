package constant

// COSObjectKeyPrefixAttachments 是附件在对象存储中的目录前缀。
// 最终对象键形如 "blog/attachments/<postID>"。
const COSObjectKeyPrefixAttachments = "blog/attachments/"
