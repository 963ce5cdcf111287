package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/scene"
)

// Highlight shape for lit bodies.
const (
	specularPower    = float32(24.0)
	specularStrength = float32(0.15)
)

// lightUniforms is the lighting state pushed to the lit shaders each frame: one point light at the
// sun plus an ambient term, both taken from the scene's lights.
type lightUniforms struct {
	viewPos    [3]float32
	lightPos   [3]float32
	lightColor [3]float32
	intensity  float32
	lightRange float32 // render units; 0 is unlimited
	ambient    [4]float32
}

func newLightUniforms(lights []scene.Light) lightUniforms {
	u := lightUniforms{
		lightColor: [3]float32{1, 1, 1},
		intensity:  1,
		ambient:    [4]float32{0.2, 0.2, 0.2, 1},
	}
	for _, l := range lights {
		rgb := hexRGB(l.Color)
		switch l.Kind {
		case scene.Ambient:
			// The shader is LDR; intensities above one saturate.
			k := l.Intensity
			if k > 1 {
				k = 1
			}
			u.ambient = [4]float32{rgb[0] * k, rgb[1] * k, rgb[2] * k, 1}
		case scene.Point:
			u.lightColor = rgb
			u.intensity = l.Intensity
			u.lightRange = l.Distance * worldScale
			u.lightPos = toArray(vec(l.Position))
		}
	}
	return u
}

func hexRGB(c uint32) [3]float32 {
	return [3]float32{
		float32(c>>16&0xff) / 255,
		float32(c>>8&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

// apply sets the uniforms on shader (cgo-safe: local arrays).
func (u *lightUniforms) apply(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := u.viewPos
	lightPos := u.lightPos
	lightColor := u.lightColor
	amb := u.ambient
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{u.intensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "lightRange"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{u.lightRange}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS shades with a point light at lightPos. Light fades to zero at lightRange.
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float lightRange;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 toLight = lightPos - fragPosition;
  float att = 1.0;
  if (lightRange > 0.0) {
    att = clamp(1.0 - length(toLight) / lightRange, 0.0, 1.0);
    att *= att;
  }
  vec3 L = normalize(toLight);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity * att;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength * att;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
	litTexturedFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPos;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float lightRange;
uniform float specularPower;
uniform float specularStrength;
uniform sampler2D texture0;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 toLight = lightPos - fragPosition;
  float att = 1.0;
  if (lightRange > 0.0) {
    att = clamp(1.0 - length(toLight) / lightRange, 0.0, 1.0);
    att *= att;
  }
  vec3 L = normalize(toLight);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity * att;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength * att;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
