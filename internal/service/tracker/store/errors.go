package store

import (
	"fmt"

	apperrors "github.com/darkkaiser/pricewatch-server/internal/pkg/errors"
)

var (
	// ErrPathTraversalDetected 파일 경로 생성 시 Path Traversal(경로 이탈) 시도가 감지되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrEmptyProductKey 상품 문서의 조회 키(정규화 URL)가 비어있을 때 반환하는 에러입니다.
	ErrEmptyProductKey = apperrors.New(apperrors.InvalidInput, "상품 문서의 정규화 URL이 비어있습니다")
)

// NewErrStoreInitFailed 저장소 초기화에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrStoreInitFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.Persistence, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

// NewErrDocumentReadFailed 문서 파일을 읽는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDocumentReadFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Persistence, "문서 조회 실패: 저장된 문서 파일 읽기 처리 중 오류가 발생했습니다")
}

// NewErrDocumentWriteFailed 문서 파일 저장에 실패했을 때 반환하는 에러를 생성합니다.
func NewErrDocumentWriteFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Persistence, "문서 저장 실패: 문서 파일 쓰기 처리 중 오류가 발생했습니다")
}

// NewErrJSONMarshalFailed 문서 데이터를 JSON으로 직렬화하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrJSONMarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Persistence, "문서 저장 실패: 문서 데이터 직렬화(JSON Marshal) 중 오류가 발생했습니다")
}

// NewErrJSONUnmarshalFailed 문서 데이터를 JSON에서 역직렬화하는 데 실패했을 때 반환하는 에러를 생성합니다.
func NewErrJSONUnmarshalFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Persistence, "문서 조회 실패: 문서 데이터 역직렬화(JSON Unmarshal) 중 오류가 발생했습니다")
}
