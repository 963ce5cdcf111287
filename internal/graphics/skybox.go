package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/viewer"
)

const skyboxScale = 1000

// equirectAspectMin/Max: width/height ratio for equirectangular panorama (typically 2:1).
const (
	equirectAspectMin = 1.8
	equirectAspectMax = 2.2
)

// skybox is the background: a large cube centred on the camera, textured with the scene's
// background image as an equirectangular panorama or a cubemap.
type skybox struct {
	tex       rl.Texture2D
	mesh      rl.Mesh
	mtl       rl.Material
	equirect  bool
	camPosLoc int32
	texLoc    int32
}

// loadSkybox uploads the background named by the scene. It returns nil when the image is missing
// or the GPU rejects it; the clear colour shows instead.
func loadSkybox(v *viewer.Viewer) *skybox {
	name := v.Scene.Background.Texture
	img, err := v.Textures.Image(name)
	if err != nil {
		v.Log.Warn(fmt.Sprintf("background %s: %v", name, err))
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	aspect := float32(b.Dx()) / float32(b.Dy())
	s := &skybox{equirect: aspect >= equirectAspectMin && aspect <= equirectAspectMax}

	rlImg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rlImg)

	if !s.equirect {
		s.tex = rl.LoadTextureCubemap(rlImg, rl.CubemapLayoutAutoDetect)
		if !rl.IsTextureValid(s.tex) {
			return nil
		}
		s.mesh = rl.GenMeshCube(1, 1, 1)
		s.mtl = rl.LoadMaterialDefault()
		rl.SetMaterialTexture(&s.mtl, rl.MapCubemap, s.tex)
		return s
	}

	s.tex = rl.LoadTextureFromImage(rlImg)
	if !rl.IsTextureValid(s.tex) {
		return nil
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.tex)
		return nil
	}
	s.mesh = rl.GenMeshCube(1, 1, 1)
	s.mtl = rl.LoadMaterialDefault()
	s.mtl.Shader = shader
	s.camPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.texLoc = rl.GetShaderLocation(shader, "skybox")
	return s
}

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

// draw renders the cube around pos with depth writes off so bodies always draw over it.
func (s *skybox) draw(pos rl.Vector3) {
	if s == nil {
		return
	}
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if s.equirect {
		if s.camPosLoc >= 0 {
			camPos := []float32{pos.X, pos.Y, pos.Z}
			rl.SetShaderValueV(s.mtl.Shader, s.camPosLoc, camPos, rl.ShaderUniformVec3, 1)
		}
		if s.texLoc >= 0 {
			rl.SetShaderValueTexture(s.mtl.Shader, s.texLoc, s.tex)
		}
	}
	rl.DrawMesh(s.mesh, s.mtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

func (s *skybox) unload() {
	if s == nil {
		return
	}
	rl.UnloadTexture(s.tex)
}
